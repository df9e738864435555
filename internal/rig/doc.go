// Package rig is a file-backed host: armatures, their bones and their
// constraint stacks live in a YAML rig file.
//
// A Rig satisfies every host collaborator, so the CLI can select, fill and
// apply mappings without a 3D application. Constraints created by Apply are
// appended to the parent armature's stack and persisted with Save.
//
// Example rig file:
//
//	mode: OBJECT
//	armatures:
//	  - name: Rig
//	    bones: [Spine, Head]
//	    constraints:
//	      - bone: Spine
//	        type: COPY_TRANSFORMS
//	        target: Mannequin
//	        subtarget: Spine_01
//	  - name: Mannequin
//	    bones: [Spine_01, Head_01]
package rig
