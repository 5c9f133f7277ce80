package cmdargs

// IterateTokens calls yield for each logical token of args until it returns false.
// A known single-parameter option consumes the following arg as its Value unless
// it's absent or looks like an option. In this case the token gets RoleValueMissing
// and the following arg is not consumed
func (args Args) IterateTokens(yield func(token Token) bool) {
	for i := 0; i < len(args.Args); i++ {
		arg := args.Args[i]
		if !isOptionLike(arg) {
			if !yield(Token{Arg: arg, Role: RolePositional}) {
				return
			}
			continue
		}

		token := Token{
			Arg:  arg,
			Role: RoleOption,
		}
		if len(arg) > 1 && arg[1] == '-' {
			token.Role |= RoleLong
		}
		name, isAliased := args.Resolve(arg)
		token.Name = name
		if isAliased {
			token.Role |= RoleAliased
		}

		isNoParameter, isKnown := args.knownNames[name]
		if isKnown {
			token.Role |= RoleKnown
			if !isNoParameter {
				token.Role |= RoleParameterized
				switch {
				case i == len(args.Args)-1:
					token.Role |= RoleValueMissing
				case isOptionLike(args.Args[i+1]):
					token.Role |= RoleValueMissing
					token.Value = args.Args[i+1]
				default:
					i++
					token.Value = args.Args[i]
				}
			}
		}

		if !yield(token) {
			return
		}
	}
}
