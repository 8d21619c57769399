// Package config manages user-level settings stored at ~/.th-setup/config.yaml.
// Every key can also come from a THSETUP_-prefixed environment variable or a
// bound command-line flag. With nothing set, a run scaffolds the current
// working directory and prints only creation notices.
package config
