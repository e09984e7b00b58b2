package main

// Version is the build version
var Version = "dev"

// GitTag is the git tag of the build
var GitTag = ""

// BuildDate is the date when the build was created
var BuildDate = ""
