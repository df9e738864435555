// Package document converts a bone mapping to and from its portable file
// form.
//
// # Format
//
// The canonical form is UTF-8 JSON, pretty-printed with 2-space indentation:
//
//	{
//	  "parent": "Rig",
//	  "target": "Mannequin",
//	  "constraints": [
//	    {
//	      "parent": "Hand",
//	      "target": "Hand_R",
//	      "type": "COPY_LOCATION"
//	    }
//	  ]
//	}
//
// Files ending in .yaml or .yml carry the same fields as YAML.
//
// Only resolved entries are exported. Readers accept any whitespace and
// ignore unknown fields. A document missing "parent", "target" or
// "constraints", or a constraint missing "parent", "target" or "type", or
// carrying an unknown type token, is malformed and rejected as a whole.
//
// # Merge
//
// Merge copies targets and kinds into the entries whose parent bone equals a
// constraint's parent exactly. Constraints without a matching entry are
// dropped; Merge never creates entries.
package document
