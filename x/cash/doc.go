/*
Package cash keeps the native coin of the ledger.

Every address may hold a balance of the native coin. The balance may
never go below zero. Native coins pay for the storage deposits of token
accounts and escrow records, so extensions use the Controller to move
them around.
*/
package cash
