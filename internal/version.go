package internal

// Version is the current codeshift release version
const Version = "0.2.0"
