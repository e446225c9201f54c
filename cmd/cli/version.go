package main

// version is overwritten by the release pipeline (GoReleaser)
var version = "development"
