package enums

type Action string

const (
	ActionRead   Action = "read"
	ActionMutate Action = "mutate"
)
