package vcvars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptArgForX64HostCoversAllTargets(t *testing.T) {
	cases := map[Architecture]string{
		ArchX86:   "x64_x86",
		ArchX64:   "x64",
		ArchArm:   "x64_arm",
		ArchArm64: "x64_arm64",
	}

	for target, want := range cases {
		arg, err := target.ScriptArg(ArchX64)
		require.NoError(t, err)
		assert.Equal(t, want, arg)
	}
}

func TestScriptArgForX86HostCoversAllTargets(t *testing.T) {
	cases := map[Architecture]string{
		ArchX86:   "x86",
		ArchX64:   "x86_x64",
		ArchArm:   "x86_arm",
		ArchArm64: "x86_arm64",
	}

	for target, want := range cases {
		arg, err := target.ScriptArg(ArchX86)
		require.NoError(t, err)
		assert.Equal(t, want, arg)
	}
}

func TestScriptArgForArmHostReturnsError(t *testing.T) {
	_, err := ArchX64.ScriptArg(ArchArm64)
	assert.Error(t, err)
}

func TestScriptArgForUnknownTargetReturnsError(t *testing.T) {
	_, err := Architecture("mips").ScriptArg(ArchX64)
	assert.Error(t, err)
}

func TestIsValidAcceptsAllKnownArchitectures(t *testing.T) {
	for _, a := range AllArchitectures {
		assert.True(t, a.IsValid(), a.String())
	}
	assert.False(t, Architecture("ia64").IsValid())
}
