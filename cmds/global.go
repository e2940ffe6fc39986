package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Describe(name string, desc string) {
	GlobalExecutor.Describe(name, desc)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}
