/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration entity stored under the
"_c:<package name>" key. It is loaded from the genesis file with InitConfig
and can later be changed by the configuration owner with an update
configuration message processed by UpdateConfigurationHandler.
*/
package gconf
