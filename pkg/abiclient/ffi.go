//go:build darwin || linux

package abiclient

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// EnvLibraryPath overrides the library path used by Open("").
const EnvLibraryPath = "DRPHONENUMBER_LIB"

// maxCString bounds reads of library-owned strings.
const maxCString = 1 << 16

// cPtr is a pointer owned by the loaded library.
type cPtr uintptr

// regionInfo mirrors the C RegionInfo layout.
type regionInfo struct {
	RegionCode       int32
	CountryCode      cPtr
	PhoneNumberValue int64
	FormattedNumber  cPtr
}

type stringResult struct {
	Data  cPtr
	Error cPtr
}

type numberTypeResult struct {
	Data  int32
	Error cPtr
}

type regionInfoResult struct {
	Data  cPtr
	Error cPtr
}

type boolResult struct {
	Data  bool
	Error cPtr
}

// ffiType holds the registered entry points. Arguments are *byte so that
// NULL can be passed as a nil pointer.
type ffiType struct {
	format                      func(*byte, *byte, int32) cPtr
	getNumberType               func(*byte, *byte) int32
	getRegionCodeForCountryCode func(int32) cPtr
	getRegionInfo               func(*byte, *byte) cPtr
	isValidPhoneNumber          func(*byte, *byte) bool
	freeString                  func(cPtr)
	freeRegionInfo              func(cPtr)

	// Optional symbols; nil when the library does not export them.
	getCountryCodeForRegion           func(*byte) int32
	getLibraryVersion                 func() cPtr
	liveAllocations                   func() int64
	formatResult                      func(*byte, *byte, int32) cPtr
	getNumberTypeResult               func(*byte, *byte) cPtr
	getRegionCodeForCountryCodeResult func(int32) cPtr
	getRegionInfoResult               func(*byte, *byte) cPtr
	isValidPhoneNumberResult          func(*byte, *byte) cPtr
	freeResult                        func(cPtr)
	freeMemory                        func(cPtr)
}

func defaultLibraryPath() (string, error) {
	if override := os.Getenv(EnvLibraryPath); override != "" {
		return override, nil
	}
	switch runtime.GOOS {
	case "darwin":
		return "libdrphonenumber.dylib", nil
	case "linux":
		return "libdrphonenumber.so", nil
	default:
		return "", fmt.Errorf("GOOS=%s is not supported", runtime.GOOS)
	}
}

func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

// load registers every entry point. A missing required symbol is an error;
// missing optional symbols leave their field nil.
func load(handle uintptr) (f *ffiType, err error) {
	f = &ffiType{}

	var missing string
	register := func(fptr any, name string, required bool) {
		if missing != "" {
			return
		}
		if _, err := purego.Dlsym(handle, name); err != nil {
			if required {
				missing = name
			}
			return
		}
		purego.RegisterLibFunc(fptr, handle, name)
	}

	defer func() {
		if r := recover(); r != nil {
			f, err = nil, fmt.Errorf("registering symbols: %v", r)
		}
	}()

	register(&f.format, "format", true)
	register(&f.getNumberType, "getNumberType", true)
	register(&f.getRegionCodeForCountryCode, "getRegionCodeForCountryCode", true)
	register(&f.getRegionInfo, "getRegionInfo", true)
	register(&f.isValidPhoneNumber, "isValidPhoneNumber", true)
	register(&f.freeString, "freeString", true)
	register(&f.freeRegionInfo, "freeRegionInfo", true)

	register(&f.getCountryCodeForRegion, "getCountryCodeForRegion", false)
	register(&f.getLibraryVersion, "getLibraryVersion", false)
	register(&f.liveAllocations, "liveAllocations", false)
	register(&f.formatResult, "formatResult", false)
	register(&f.getNumberTypeResult, "getNumberTypeResult", false)
	register(&f.getRegionCodeForCountryCodeResult, "getRegionCodeForCountryCodeResult", false)
	register(&f.getRegionInfoResult, "getRegionInfoResult", false)
	register(&f.isValidPhoneNumberResult, "isValidPhoneNumberResult", false)
	register(&f.freeResult, "freeResult", false)
	register(&f.freeMemory, "freeMemory", false)

	if missing != "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingSymbol, missing)
	}
	return f, nil
}

// goString copies a NUL-terminated library string.
func goString(p cPtr) string {
	if p == 0 {
		return ""
	}
	base := unsafe.Pointer(uintptr(p))
	n := 0
	for n < maxCString && *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(base), n))
}

func (p cPtr) regionInfo() *regionInfo {
	return (*regionInfo)(unsafe.Pointer(uintptr(p)))
}

func (p cPtr) stringResult() *stringResult {
	return (*stringResult)(unsafe.Pointer(uintptr(p)))
}

func (p cPtr) numberTypeResult() *numberTypeResult {
	return (*numberTypeResult)(unsafe.Pointer(uintptr(p)))
}

func (p cPtr) regionInfoResult() *regionInfoResult {
	return (*regionInfoResult)(unsafe.Pointer(uintptr(p)))
}

func (p cPtr) boolResult() *boolResult {
	return (*boolResult)(unsafe.Pointer(uintptr(p)))
}
