package rover_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRoverSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rover Suite")
}
