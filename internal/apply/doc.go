// Package apply turns resolved mapping entries into bone constraints on the
// host.
//
// Apply walks the store in order. Each resolved entry whose parent and target
// bones both resolve to live handles gets one constraint; entries that do not
// resolve are skipped and reported. Constraints already created are never
// rolled back.
package apply
