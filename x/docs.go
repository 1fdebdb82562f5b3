/*
Package x contains the extensions of the swap ledger.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together to construct an application.
This package holds the authentication interface shared by all
of them. Each sub-package is a single extension: native cash,
tokens, signatures, derived authorities and the escrow itself.
*/
package x
