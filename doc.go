/*

Package weave defines interfaces used throughout the ledger, such as: storage, transactions, handlers etc.
It also contains addresses, program derived addresses and the context helpers shared by all extensions.
Look into this package to get a brief overview of the interfaces the extensions are built from.

*/

package weave
