// Package profile loads named code-generation recipes from YAML documents
// and resolves them into codekit configs.
//
// A profiles document maps names to recipes:
//
//	profiles:
//	  referral:
//	    template: "REF-####-####"
//	    charset: alphanumeric
//	    count: 100
//	  pin:
//	    length: 6
//	    charset: numeric
//	  voucher:
//	    length: 10
//	    charset: custom
//	    pool: "ACDEFGHJKLMNPQRSTUVWXYZ2345679"
//	    prefix: "V-"
//
// Exactly one of template and length must be set per profile. Charset is one
// of numeric, alphabetic, alphanumeric (the default), or custom with a
// required pool. Count defaults to 1.
//
// # Usage
//
//	import "github.com/dmitrymomot/codekit/pkg/profile"
//
//	profiles, err := profile.LoadFile("profiles.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := profiles.Resolve("referral")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	codes, err := codekit.Generate(cfg)
//
// Returns ErrParsingProfiles for undecodable documents, ErrProfileNotFound
// for unknown names, and ErrInvalidProfile or ErrUnknownCharset for recipes
// whose fields do not resolve.
package profile
