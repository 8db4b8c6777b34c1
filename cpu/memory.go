package cpu

const (
	MEMORY_SIZE = 256  // Bytes of addressable memory.
	STACK_START = 0xf4 // Initial stack pointer; the stack grows down from here.
	VECTOR_BASE = 0xf8 // Interrupt vector: address of the interrupt handler.
)

// Memory is the byte addressable RAM of the machine.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at address.
func (mem *Memory) Read(address byte) byte {
	return mem[address]
}

// Write stores value at address.
func (mem *Memory) Write(address byte, value byte) {
	mem[address] = value
}

// Load copies an image into memory, starting at address zero.
func (mem *Memory) Load(image []byte) (err error) {
	if len(image) > len(mem) {
		err = ErrImageSize
		return
	}

	clear(mem[:])
	copy(mem[:], image)

	return
}
