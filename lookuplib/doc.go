// Package lookuplib contains a logic of geolocating a list of IP
// addresses with some external provider.
//
// Client queries a provider for each address of the list, one after
// another, and collects outcomes into ResultSet. A failure of a single
// lookup never stops a whole run: it becomes an error record for that
// address instead.
//
// ResultSet keeps an order of input list, so does its JSON
// representation. WriteResults prints it and dumps into a file.
package lookuplib
