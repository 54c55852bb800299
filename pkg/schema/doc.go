// Package schema builds generator schemas, either in code with Node and its
// options or from YAML and TOML documents.
//
// A document lists examples, each with a title and an ordered list of nodes:
//
//	examples:
//	  - title: Basics
//	    nodes:
//	      - comment: ["a", "b"]
//	      - empty: 2
//	      - integer: 5
//	        name: test_int
//	        tabs: 1
//	        comments:
//	          top: "a top comment"
//	          right: ["r1", "r2"]
//	      - float: 1.5
//
// Every node carries exactly one value key: comment, empty, integer or
// float. Malformed options never fail the load. They produce a Warning and
// are skipped, the same way an unknown option is. Only a document that
// cannot be read or parsed is an error.
package schema
