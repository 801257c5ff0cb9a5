package core

// Fault hooks. Both halt forever: no unwinding, no output, no HAL calls.

// StackOverflow is the stack exhaustion handler.
// TinyGo reports stack exhaustion through its own runtime abort and offers
// no user hook, so neither board target calls this. It is kept so a target
// with its own stack guard can link to it.
func StackOverflow() {
	halt()
}

// Panic is the abnormal termination handler. The reason is discarded.
func Panic(reason any) {
	_ = reason
	halt()
}

// RecoverFault must be deferred directly. A recovered panic ends in Panic.
func RecoverFault() {
	if r := recover(); r != nil {
		Panic(r)
	}
}
