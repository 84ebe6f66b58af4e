// Package services implements the driving ports on top of the driven ports:
// catalogue browsing, batch publishing, and draft management.
package services
