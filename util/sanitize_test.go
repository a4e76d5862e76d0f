package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Buraco na rua", SanitizeText("Buraco na rua"))
	assert.Equal(t, "Buraco na rua", SanitizeText("Buraco <script>alert(1)</script>na rua"))
	assert.Equal(t, "Cratera perigosa", SanitizeText("<b>Cratera</b> perigosa"))
	assert.Equal(t, "a & b", SanitizeText("a & b"))
	assert.Equal(t, "Água no bueiro", SanitizeText("Água no bueiro"))
}
