package emulator

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ls8/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(&emu.Tape, emu.Cpu.Console)
	assert.Equal(&emu.Timer, emu.Cpu.Timer)
}

// doLoad parses program into the emulator ROM, and resets.
func doLoad(emu *Emulator, program []string, t *testing.T) (output *bytes.Buffer) {
	err := emu.Rom.Unmarshal(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)

	output = &bytes.Buffer{}
	emu.Tape.Output = output

	err = emu.Reset()
	require.NoError(t, err)

	return
}

func TestEmulatorPrint8(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	}

	output := doLoad(emu, program, t)
	assert.Equal(1, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(4, emu.LineNo())

	assert.NoError(emu.Run())
	assert.False(emu.Cpu.Running)
	assert.Equal("8\n", output.String())

	// Further ticks report done.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorDivideByZero(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"10000010 # LDI R0,10",
		"00000000",
		"00001010",
		"10000010 # LDI R1,0",
		"00000001",
		"00000000",
		"10100011 # DIV R0,R1",
		"00000000",
		"00000001",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	}

	output := doLoad(emu, program, t)
	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	assert.NotErrorIs(err, cpu.ErrHalted)

	var rt *ErrRuntime
	if assert.ErrorAs(err, &rt) {
		assert.Equal(7, rt.LineNo)
		assert.Equal(6, rt.Pc)
	}

	assert.False(emu.Cpu.Running)
	assert.Empty(output.String())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doLoad(emu, []string{
		"10000010", "00000000", "00001000", // LDI R0,8
		"01000111", "00000000",             // PRN R0
		"00000001",                         // HLT
	}, t)

	assert.NoError(emu.Run())
	emu.Cpu.Memory[1] = 1

	assert.NoError(emu.Reset())
	assert.Equal(byte(0), emu.Cpu.Memory[1])
	assert.Equal(byte(0), emu.Cpu.Register[0])
	assert.True(emu.Cpu.Running)

	assert.NoError(emu.Run())
	assert.Equal("8\n8\n", output.String())
}

func TestEmulatorOpen(t *testing.T) {
	assert := assert.New(t)

	filesys := fstest.MapFS{
		"mult.ls8": &fstest.MapFile{Data: []byte(strings.Join([]string{
			"10000010", "00000000", "00001000", // LDI R0,8
			"10000010", "00000001", "00001001", // LDI R1,9
			"10100010", "00000000", "00000001", // MUL R0,R1
			"01000111", "00000000",             // PRN R0
			"00000001",                         // HLT
		}, "\n"))},
	}

	emu := NewEmulator()
	output := &bytes.Buffer{}
	emu.Tape.Output = output

	assert.Error(emu.Open(filesys, "missing"))

	assert.NoError(emu.Open(filesys, "mult"))
	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.Equal("72\n", output.String())
}

func TestEmulatorTimerInterrupt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	now := time.Unix(1000, 0)
	emu.Timer.Now = func() time.Time { return now }

	program := []string{
		"10000010", "00000000", "11111000", // LDI R0,0xF8
		"10000010", "00000001", "00010001", // LDI R1,HANDLER
		"10000100", "00000000", "00000001", // ST R0,R1
		"10000010", "00000101", "00000001", // LDI R5,1
		"10000010", "00000000", "00001111", // LDI R0,LOOP
		"01010100", "00000000",             // LOOP: JMP R0
		"10000010", "00000000", "01000001", // HANDLER: LDI R0,'A'
		"01001000", "00000000",             // PRA R0
		"00010011",                         // IRET
	}

	output := doLoad(emu, program, t)

	for range 100 {
		done, err := emu.Tick()
		require.NoError(t, err)
		require.False(t, done)
	}
	assert.Empty(output.String())

	for range 3 {
		now = now.Add(time.Second)
		for range 10 {
			_, err := emu.Tick()
			require.NoError(t, err)
		}
	}

	assert.Equal("AAA", output.String())
	assert.True(emu.Cpu.Ie)
	assert.Equal(15, emu.Cpu.Pc)
	assert.Equal(byte(cpu.STACK_START), emu.Cpu.Register[cpu.REG_SP])
}

func TestEmulatorBreak(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doLoad(emu, []string{
		"10000010", "00000000", "00001000", // LDI R0,8
		"01000111", "00000000",             // PRN R0
		"00000001",                         // HLT
	}, t)

	var err error
	emu.Break, err = NewWatch("r0 == 8", emu.Defines())
	require.NoError(t, err)

	err = emu.Run()
	assert.ErrorIs(err, ErrBreak)
	assert.Equal(3, emu.Cpu.Pc)
	assert.Empty(output.String())
	assert.True(emu.Cpu.Running)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("0xf8", defines["VECTOR_BASE"])
	assert.Equal("0", defines["INT_TIMER"])
	assert.Equal("256", defines["ROM_SIZE"])
}
