package scan

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// NamespaceDeclaration is the UUID namespace for declaration identities,
// derived from "sitemapgen/declaration/v1" in the URL namespace.
var NamespaceDeclaration = uuid.NewSHA1(uuid.NameSpaceURL, []byte("sitemapgen/declaration/v1"))

// DeclarationID returns a deterministic UUID v5 for a declaration, stable
// across runs and machines as long as the package directory and type name do
// not change. File moves within a package keep the ID.
//
// Examples:
//   - {Dir: "web/pages", TypeName: "Home"} → uuid_v5(ns, "web/pages.Home")
//   - {Dir: ".", TypeName: "Home"}         → uuid_v5(ns, "Home")
func DeclarationID(d sitemapgen.Declaration) uuid.UUID {
	name := strings.TrimPrefix(d.QualifiedName(), "./")
	return uuid.NewSHA1(NamespaceDeclaration, []byte(name))
}
