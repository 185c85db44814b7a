package directive

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies the action a directive performs.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks an unrecognized directive

	KindRemoveCommand // remove-command
	KindHideCommand   // hide-command
)

// recognized lists the directive keys in precedence order: when an entry
// carries more than one, the first non-empty one wins.
var recognized = []Kind{KindRemoveCommand, KindHideCommand}
