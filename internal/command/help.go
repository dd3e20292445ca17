package command

// helpText is built from the verb table in init; a package-level
// initializer would form a cycle through the HELP handler.
var helpText []string

func init() {
	helpText = make([]string, 0, len(verbs)+1)
	helpText = append(helpText, "Available commands:")
	for _, v := range verbs {
		helpText = append(helpText, "\t"+v.synopsis)
	}
}

// help returns the command reference, one line per verb in table order.
func help() []string {
	out := make([]string, len(helpText))
	copy(out, helpText)
	return out
}
