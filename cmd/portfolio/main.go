// Command portfolio is a terminal rendition of Arnab Ghosh's portfolio site.
package main

// Version is set at build time
var Version = "dev"

func main() {
	setVersion(Version)
	execute()
}
