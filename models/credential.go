// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential identifies one stored secret.
//
// The secret itself is never part of this type: it lives encrypted in the
// file at StoragePath and is only ever held in memory after decryption.
type Credential struct {
	// Name is the caller-chosen identifier. It may contain the group
	// separator ("__") to place the credential in a display hierarchy;
	// storage stays flat.
	Name string

	// StoragePath is <store dir>/<Name>.gpg, a pure function of Name and
	// the vault location.
	StoragePath string
}
