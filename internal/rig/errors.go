package rig

import "go.trai.ch/zerr"

var (
	// ErrMalformedRig is returned when a rig file cannot be decoded or is inconsistent.
	ErrMalformedRig = zerr.New("malformed rig file")

	// ErrIO is returned when a rig file cannot be read or written.
	ErrIO = zerr.New("rig file i/o failed")

	// ErrBoneNotFound is returned when a constraint references a bone the rig does not have.
	ErrBoneNotFound = zerr.New("bone not found")
)
