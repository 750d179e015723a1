// Package config provides configuration loading, merging, and validation
// facilities for passout.
//
// Two things are configured:
//   - the vault settings ([StructuredConfig]): where the vault lives, where
//     the profile file is and how verbose diagnostics are. They are assembled
//     from built-in defaults, environment variables and command-line flags,
//     later sources overriding earlier non-zero fields;
//   - the profile ([Profile]): the JSON file inside the vault naming the gpg
//     tool, the gpg identity and the clipboard behaviour. Unknown keys are
//     rejected and absent optional keys receive documented defaults.
//
// The main entry point is [GetConfig].
package config
