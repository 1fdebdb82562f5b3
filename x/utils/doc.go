/*
Package utils provides decorators that every application stacks in front
of its router: Recovery, Logging, Metrics and Savepoint.
*/
package utils
