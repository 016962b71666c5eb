// SPDX-License-Identifier: MIT

// Package config loads the engine, force and catalog settings for the
// magiccouple command.
//
// Sources, in increasing precedence:
//   - Default(), which mirrors the coupling package defaults;
//   - an optional YAML file;
//   - MAGIC_* environment variables.
//
// The merged Config is validated once; EngineOptions then maps it onto
// coupling options that are guaranteed not to panic.
package config
