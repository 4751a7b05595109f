//go:build !(amd64 || arm64 || arm64be || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || loong64 || sparc64 || wasm)

package alignmem

// MaxAllocableMemory is the largest raw block the allocator will request from
// its host on 32-bit targets.
//
// Kept below the signed 32-bit maximum: memory checkers treat larger requests
// as negative sizes and report false positives.
const MaxAllocableMemory uint64 = (1 << 31) - (1 << 16)
