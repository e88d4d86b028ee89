// Package config loads runtime configuration for the function
// library from a TOML file.
//
// Operators embedding the library can disable functions and cap
// random generation without recompiling:
//
//	disabled = ["randAscii", "base32encode"]
//
//	[random]
//	max_len = 1024
//
// Apply a loaded config when building the library:
//
//	cfg, err := config.Load("tmplfn.toml")
//	lib := funcs.New(cfg.Options()...)
//
// Watch re-loads the file on change, for engines that rebuild their
// function table at runtime:
//
//	updates, err := config.Watch(ctx, "tmplfn.toml")
//	for cfg := range updates {
//		lib = funcs.New(cfg.Options()...)
//	}
package config
