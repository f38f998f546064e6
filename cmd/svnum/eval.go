package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/svlang/svnum"
)

var evalCommand = &cobra.Command{
	Use:   "eval <lhs> <op> <rhs> | eval <op> <operand>",
	Short: "apply one operator to parsed literals",
	Long:  ``,
	Args:  cobra.RangeArgs(2, 3),
	Run: func(_ *cobra.Command, args []string) {
		var out string
		var err error
		if len(args) == 2 {
			out, err = evalUnary(args[0], args[1])
		} else {
			out, err = evalBinary(args[1], args[0], args[2])
		}
		if err != nil {
			log.WithError(err).Fatal("eval failed")
		}
		fmt.Println(out)
	},
}

func evalUnary(op, operand string) (string, error) {
	v, err := svnum.Parse(operand)
	if err != nil {
		return "", errors.Wrapf(err, "operand %q", operand)
	}
	switch op {
	case "-":
		return v.Neg().String(), nil
	case "~":
		return v.Not().String(), nil
	case "red&":
		return v.ReductionAnd().String(), nil
	case "red|":
		return v.ReductionOr().String(), nil
	case "red^":
		return v.ReductionXor().String(), nil
	default:
		return "", errors.Errorf("unknown unary operator %q", op)
	}
}

func evalBinary(op, lhsText, rhsText string) (string, error) {
	lhs, err := svnum.Parse(lhsText)
	if err != nil {
		return "", errors.Wrapf(err, "lhs %q", lhsText)
	}
	rhs, err := svnum.Parse(rhsText)
	if err != nil {
		return "", errors.Wrapf(err, "rhs %q", rhsText)
	}

	switch op {
	case "+":
		return lhs.Add(rhs).String(), nil
	case "-":
		return lhs.Sub(rhs).String(), nil
	case "x", "*":
		return lhs.Mul(rhs).String(), nil
	case "/":
		return lhs.Div(rhs).String(), nil
	case "%":
		return lhs.Rem(rhs).String(), nil
	case "**":
		return lhs.Pow(rhs).String(), nil
	case "&":
		return lhs.And(rhs).String(), nil
	case "|":
		return lhs.Or(rhs).String(), nil
	case "^":
		return lhs.Xor(rhs).String(), nil
	case "~^", "^~":
		return lhs.Xnor(rhs).String(), nil
	case "<<":
		return lhs.Shl(rhs).String(), nil
	case ">>":
		return lhs.Lshr(rhs).String(), nil
	case ">>>":
		return lhs.Ashr(rhs).String(), nil
	case "==":
		return lhs.Eq(rhs).String(), nil
	case "!=":
		return lhs.Ne(rhs).String(), nil
	case "<":
		return lhs.Lt(rhs).String(), nil
	case "<=":
		return lhs.Le(rhs).String(), nil
	case ">":
		return lhs.Gt(rhs).String(), nil
	case ">=":
		return lhs.Ge(rhs).String(), nil
	case "===":
		return strconv.FormatBool(svnum.ExactlyEqual(lhs, rhs)), nil
	case "!==":
		return strconv.FormatBool(!svnum.ExactlyEqual(lhs, rhs)), nil
	case "==?":
		return svnum.WildcardEqual(lhs, rhs).String(), nil
	default:
		return "", errors.Errorf("unknown operator %q", op)
	}
}
