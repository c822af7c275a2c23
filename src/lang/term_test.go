package lang

func vr(name string) Variable {
	return Variable{Name: name}
}

func ab(param string, body Term) Abstraction {
	return Abstraction{Param: param, Body: body}
}

func ap(fn, arg Term) Application {
	return Application{Func: fn, Arg: arg}
}

func ct(value any) Constant {
	return Constant{Value: value}
}
