// Package config gathers everything justfetch reads from outside the
// template: environment variables, the location of the user's config
// directory, the optional settings file and the template itself.
//
// Configuration is resolved once at startup and passed down explicitly; no
// other package reads the environment.
//
// Lookup order for the template:
//
//  1. the --config flag
//  2. $JUSTFETCH_CONFIG
//  3. $XDG_CONFIG_HOME/JustFetch/config (platform config dir elsewhere)
//  4. $HOME/.config/JustFetch/config
//
// A missing template is not an error: DefaultTemplate is used instead.
package config
