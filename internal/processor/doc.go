// Package processor wires the application together: it loads the dictionary,
// builds the resolver and runs the single-word, batch or server mode.
package processor
