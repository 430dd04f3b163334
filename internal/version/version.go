package version

// Version is overridden at build time with -ldflags "-X pickprimers/internal/version.Version=...".
var Version = "dev"
