// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app turns the errors returned by the lower layers into the single
// human-readable line printed by the command line before it exits.
package app

const (
	// MsgCredentialNotFound is printed when a command names a credential
	// that is not stored.
	MsgCredentialNotFound = "No password named '%s'"

	// MsgCredentialAlreadyExists is printed when add targets a name that is
	// already stored.
	MsgCredentialAlreadyExists = "A password called '%s' already exists"

	// MsgInvalidCredentialName is printed for names that cannot be stored as
	// a single file.
	MsgInvalidCredentialName = "Invalid password name: %v"

	// MsgMissingIdentity is printed when the config file has no gpg identity.
	MsgMissingIdentity = "Please set \"id\" (your gpg id) in the config file: %v"

	// MsgConfiguration is printed for every other configuration problem.
	MsgConfiguration = "Configuration error: %v"

	// MsgBadVaultLayout is printed when the vault directories are unusable.
	MsgBadVaultLayout = "Broken vault layout: %v"

	// MsgToolNotFound is printed when gpg or xclip cannot be launched.
	MsgToolNotFound = "Utility not found: %v"

	// MsgToolFailed is printed when gpg or xclip exits non-zero. The error
	// text already names the tool and carries its output.
	MsgToolFailed = "%v"

	// MsgClipboardWriteFailed is printed when a clipboard target rejected the
	// secret.
	MsgClipboardWriteFailed = "Could not load the clipboard: %v"

	// MsgEmptySecret is printed when add reads an empty secret.
	MsgEmptySecret = "Refusing to store an empty password"

	// MsgNothingToBrowse is printed when browse finds no credentials.
	MsgNothingToBrowse = "No passwords stored yet"

	// MsgUnexpected is printed for errors without a dedicated message.
	MsgUnexpected = "Error: %v"
)
