package control

// FieldName represents a standard field in a Debian control file.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html
type FieldName string

const (
	FieldSource           FieldName = "Source"
	FieldMaintainer       FieldName = "Maintainer"
	FieldUploaders        FieldName = "Uploaders"
	FieldSection          FieldName = "Section"
	FieldPriority         FieldName = "Priority"
	FieldStandardsVersion FieldName = "Standards-Version"
	FieldBuildDepends     FieldName = "Build-Depends"
	FieldHomepage         FieldName = "Homepage"
	FieldPackage          FieldName = "Package"
	FieldArchitecture     FieldName = "Architecture"
	FieldVersion          FieldName = "Version"
	FieldDescription      FieldName = "Description"
)
