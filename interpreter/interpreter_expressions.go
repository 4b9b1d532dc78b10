package interpreter

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/value"
)

func (i *Interpreter) evalGrouping(expr *ast.Grouping) (value.Value, error) {
	return i.evalExpr(expr.Inner)
}

func (i *Interpreter) evalLiteral(expr *ast.Literal) (value.Value, error) {
	return expr.Val, nil
}

func (i *Interpreter) evalUnary(expr *ast.Unary) (value.Value, error) {
	operand, err := i.evalExpr(expr.Operand)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case "+":
		return operand, nil
	case "-":
		switch v := operand.(type) {
		case *value.Integer:
			return &value.Integer{Val: -v.Val}, nil
		case *value.Number:
			return &value.Number{Val: -v.Val}, nil
		default:
			return nil, newRuntimeError(expr.Operand.Line(), "cannot negate %s", operand.Kind())
		}
	case "!":
		return value.FromBool(!value.Truthy(operand)), nil
	default:
		return nil, newRuntimeError(expr.Line(), "unexpected unary operator '%s'", expr.Operator)
	}
}

// evalLogical short-circuits and never coerces its result to a boolean:
// `and` returns the left operand unchanged when it is falsy, `or` returns
// it unchanged when it is truthy; otherwise the right operand is
// evaluated and returned as-is.
func (i *Interpreter) evalLogical(expr *ast.Logical) (value.Value, error) {
	left, err := i.evalExpr(expr.LeftExpr)
	if err != nil {
		return nil, err
	}
	leftTruthy := value.Truthy(left)
	switch expr.Operator {
	case "and":
		if !leftTruthy {
			return left, nil
		}
	case "or":
		if leftTruthy {
			return left, nil
		}
	default:
		return nil, newRuntimeError(expr.LeftExpr.Line(), "'%s' is not a supported logical operator", expr.Operator)
	}
	return i.evalExpr(expr.RightExpr)
}

func (i *Interpreter) evalTernary(expr *ast.Ternary) (value.Value, error) {
	test, err := i.evalExpr(expr.Test)
	if err != nil {
		return nil, err
	}
	if value.Truthy(test) {
		return i.evalExpr(expr.WhenTrue)
	}
	return i.evalExpr(expr.WhenFalse)
}

func (i *Interpreter) evalVariable(expr *ast.Variable) (value.Value, error) {
	v, ok := i.env.Get(expr.Name)
	if !ok {
		return nil, newRuntimeError(expr.Line(), "Variable '%s' referenced before assignment", expr.Name)
	}
	return v, nil
}

func (i *Interpreter) evalAssignment(expr *ast.Assignment) (value.Value, error) {
	v, err := i.evalExpr(expr.Value)
	if err != nil {
		return nil, err
	}
	if err := i.env.Assign(expr.Name, v); err != nil {
		return nil, newRuntimeError(expr.Line(), "%s", err)
	}
	return v, nil
}

// evalBinary implements the numeric coercion rule: two Integers stay
// Integer for + - *, / always produces a Number, and a Number on either
// side widens both operands to Number. Comparisons follow the same
// coercion. String concatenation is asymmetric by design: String + String
// concatenates, String + anything-else concatenates using the right
// operand's displayed form, but anything-else + String is not string
// concatenation (it falls through to the numeric rule and errors).
func (i *Interpreter) evalBinary(expr *ast.Binary) (value.Value, error) {
	left, err := i.evalExpr(expr.LeftExpr)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(expr.RightExpr)
	if err != nil {
		return nil, err
	}
	line := expr.LeftExpr.Line()

	switch expr.Operator {
	case "==":
		return value.FromBool(left.Equal(right)), nil
	case "!=":
		return value.FromBool(!left.Equal(right)), nil
	case "+":
		if ls, ok := left.(*value.String); ok {
			if rs, ok := right.(*value.String); ok {
				return &value.String{Val: ls.Val + rs.Val}, nil
			}
			return &value.String{Val: ls.Val + right.String()}, nil
		}
		return numericBinary(line, expr.Operator, left, right)
	case "-", "*", "/":
		return numericBinary(line, expr.Operator, left, right)
	case "<", "<=", ">", ">=":
		return numericComparison(line, expr.Operator, left, right)
	default:
		return nil, newRuntimeError(line, "'%s' is not a valid operator", expr.Operator)
	}
}

func numericBinary(line int, op string, left, right value.Value) (value.Value, error) {
	leftInt, leftIsInt := left.(*value.Integer)
	rightInt, rightIsInt := right.(*value.Integer)

	if !value.IsNumeric(left) || !value.IsNumeric(right) {
		return nil, newRuntimeError(line, "operator '%s' cannot be applied to these types", op)
	}

	if leftIsInt && rightIsInt && op != "/" {
		switch op {
		case "+":
			return &value.Integer{Val: leftInt.Val + rightInt.Val}, nil
		case "-":
			return &value.Integer{Val: leftInt.Val - rightInt.Val}, nil
		case "*":
			return &value.Integer{Val: leftInt.Val * rightInt.Val}, nil
		}
	}

	lf, rf := value.AsFloat64(left), value.AsFloat64(right)
	switch op {
	case "+":
		return &value.Number{Val: lf + rf}, nil
	case "-":
		return &value.Number{Val: lf - rf}, nil
	case "*":
		return &value.Number{Val: lf * rf}, nil
	case "/":
		return &value.Number{Val: lf / rf}, nil
	default:
		return nil, newRuntimeError(line, "operator '%s' cannot be applied to these types", op)
	}
}

func numericComparison(line int, op string, left, right value.Value) (value.Value, error) {
	if !value.IsNumeric(left) || !value.IsNumeric(right) {
		return nil, newRuntimeError(line, "operator '%s' cannot be applied to these types", op)
	}
	lf, rf := value.AsFloat64(left), value.AsFloat64(right)
	switch op {
	case "<":
		return value.FromBool(lf < rf), nil
	case "<=":
		return value.FromBool(lf <= rf), nil
	case ">":
		return value.FromBool(lf > rf), nil
	case ">=":
		return value.FromBool(lf >= rf), nil
	default:
		return nil, newRuntimeError(line, "operator '%s' cannot be applied to these types", op)
	}
}
