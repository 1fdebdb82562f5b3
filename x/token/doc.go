/*
Package token manages fungible assets.

A Mint describes an asset type and the number of decimals one whole unit
is divided into. Balances are kept in token accounts, each holding an
amount of a single mint on behalf of an owner. Only the owner can
transfer from an account or close it. Creating an account locks a
deposit of native coins at the account address that is returned on
close.

The canonical account of an owner for a mint lives at the associated
address, derived from the owner and the mint. Other extensions may
create accounts at any address, for example at an address derived from
their own state, owned by that very address.
*/
package token
