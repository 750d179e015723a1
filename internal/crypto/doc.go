// Package crypto is the gateway to the external gpg tool.
//
// Secrets are encrypted to the profile's own identity (signer and recipient
// are the same key), and stored files are decrypted with the terminal's
// standard input attached so that gpg can ask for the passphrase through
// pinentry. Every call launches exactly one process; nothing is retried.
package crypto
