package cmdargs

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleOption        Role = 1 << iota
	RoleLong               = 1 << iota // modifies RoleOption, token starts with "--"
	RoleAliased            = 1 << iota // modifies RoleOption
	RoleKnown              = 1 << iota // modifies RoleOption
	RoleParameterized      = 1 << iota // modifies RoleOption | RoleKnown
	RoleValueMissing       = 1 << iota // modifies RoleOption | RoleKnown | RoleParameterized
	RolePositional         = 1 << iota
)

type Token struct {
	// Arg is the original user input
	Arg string
	// Name is the canonical name the option resolved to. Equals Arg for
	// unresolved options
	Name  string
	Value string
	// Role is sum of Role constants. Possible values:
	// RoleOption | RoleKnown                                        // no-parameter option
	// RoleOption | RoleKnown | RoleParameterized                    // Value holds consumed parameter
	// RoleOption | RoleKnown | RoleParameterized | RoleValueMissing // Value holds option-like next arg, if any
	// RoleOption                                                    // not declared
	// RolePositional
	// RoleLong and RoleAliased can be combined with any RoleOption value
	Role Role
}
