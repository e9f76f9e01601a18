package internal

// Version is the current release of translate-requirements
const Version = "0.3.1"
