package app

// Name is the application name used in user-facing output.
const Name = "whispertunnel"
