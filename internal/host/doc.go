// Package host declares the collaborators bonemap needs from the 3D
// application that owns the armatures. The core never touches the host's
// object graph directly; it only goes through these interfaces.
package host
