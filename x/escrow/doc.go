/*
Package escrow implements a two party atomic swap of two tokens.

The initializer opens an escrow by depositing an amount of token A into a
custody account and stating the amount of token B expected in exchange. The
escrow record is stored at an address derived from the initializer and an
escrow id. The custody account is stored at an address derived from the
record address and is owned by that same address. No private key exists for
either of them, only this package can recreate the custody authority.

Any taker holding enough of token B can finalize the escrow. In a single
transaction token B goes to the initializer, the custody balance goes to the
taker and both the custody account and the record are removed. An escrow
cannot be cancelled.
*/
package escrow
