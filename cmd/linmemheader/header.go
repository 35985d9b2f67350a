package main

import (
	"fmt"
	"io"
)

const headerGuard = "LINMEM_CABI_H"

// writeHeader emits the C header matching the cabi package's flat ABI
// (§6): one prototype per exported function, wrapped in an include
// guard and an extern "C" block for C++ consumers.
func writeHeader(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#ifndef %s\n#define %s\n\n", headerGuard, headerGuard); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "#include <stdbool.h>\n#include <stdint.h>\n\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n"); err != nil {
		return err
	}

	for _, proto := range cPrototypes {
		if _, err := fmt.Fprintln(w, proto); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n#ifdef __cplusplus\n}\n#endif\n\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "#endif // %s\n", headerGuard)
	return err
}
