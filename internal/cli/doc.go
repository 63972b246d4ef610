// Package cli provides command-line interface handling: the cobra command
// definition, flag parsing and viper configuration loading.
package cli
