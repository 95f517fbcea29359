package value

// numericBinary evaluates an arithmetic/bitwise/relational binary operator
// over two already-coerced int32 operands, returning either an Int or a
// Bool result depending on the operator category (spec.md §4.2).
func numericBinary(op string, x, y int32) (Value, error) {
	switch op {
	case OpAdd:
		return &Int{V: x + y}, nil
	case OpSub:
		return &Int{V: x - y}, nil
	case OpMult:
		return &Int{V: x * y}, nil
	case OpDiv:
		if y == 0 {
			return nil, ErrDivByZero
		}
		return &Int{V: x / y}, nil // Go / truncates toward zero, matching spec
	case OpMod:
		if y == 0 {
			return nil, ErrDivByZero
		}
		return &Int{V: x % y}, nil // Go % follows dividend sign, matching spec
	case OpLShift:
		return &Int{V: x << uint32(y)}, nil
	case OpRShift:
		return &Int{V: x >> uint32(y)}, nil
	case OpMinimum:
		if x < y {
			return &Int{V: x}, nil
		}
		return &Int{V: y}, nil
	case OpMaximum:
		if x > y {
			return &Int{V: x}, nil
		}
		return &Int{V: y}, nil
	case OpBitAnd:
		return &Int{V: x & y}, nil
	case OpBitOr:
		return &Int{V: x | y}, nil
	case OpBitXor:
		return &Int{V: x ^ y}, nil
	case OpLessThan:
		return &Bool{V: x < y}, nil
	case OpLessEqual:
		return &Bool{V: x <= y}, nil
	case OpEqual:
		return &Bool{V: x == y}, nil
	case OpNotEqual:
		return &Bool{V: x != y}, nil
	case OpGreaterEqual:
		return &Bool{V: x >= y}, nil
	case OpGreaterThan:
		return &Bool{V: x > y}, nil
	default:
		return nil, ErrBadOp
	}
}

// logicalBinary evaluates &&, ||, and imply over two already-coerced bools.
// Always yields Bool (spec.md §4.2).
func logicalBinary(op string, x, y bool) (Value, error) {
	switch op {
	case OpLogAnd:
		return &Bool{V: x && y}, nil
	case OpLogOr:
		return &Bool{V: x || y}, nil
	case OpLogImply:
		return &Bool{V: !x || y}, nil
	default:
		return nil, ErrBadOp
	}
}

// isLogicalOp reports whether op belongs to the boolean-coercing family.
func isLogicalOp(op string) bool {
	return op == OpLogAnd || op == OpLogOr || op == OpLogImply
}

// applyNumericKind dispatches a binary op between a numeric-kind receiver
// (Int/BoundedInt/Bool/Scalar, all coercible to int32/bool) and rhs,
// choosing the logical or numeric family by op, and is shared by every
// numeric-kind Value's ApplyBinary implementation.
func applyNumericKind(op string, lhs, rhs Value) (Value, error) {
	if isLogicalOp(op) {
		x, ok1 := asBool(lhs)
		y, ok2 := asBool(rhs)
		if !ok1 || !ok2 {
			return nil, valueErrorf("ApplyBinary", ErrTypeMismatch)
		}
		return logicalBinary(op, x, y)
	}
	x, ok1 := asInt32(lhs)
	y, ok2 := asInt32(rhs)
	if !ok1 || !ok2 {
		return nil, valueErrorf("ApplyBinary", ErrTypeMismatch)
	}
	v, err := numericBinary(op, x, y)
	if err != nil {
		return nil, valueErrorf("ApplyBinary", err)
	}
	return v, nil
}
