package calculus_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCalculus(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Calculus Suite")
}
