package commands

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/matmul/multiply"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show worker defaults and CPU information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := multiply.NewParallel(multiply.WithWorkers(a.cfg.Multiply.Workers))

			fmt.Fprintf(out, "platform:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "cpus:            %d\n", runtime.NumCPU())
			fmt.Fprintf(out, "gomaxprocs:      %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(out, "workers (%d rows): %d\n", a.cfg.Generate.Rows, p.Workers(a.cfg.Generate.Rows))
			fmt.Fprintf(out, "cache line pad:  %d bytes\n", cacheLinePad())
			for _, f := range cpuFeatures() {
				fmt.Fprintf(out, "  %-8s %t\n", f.name, f.ok)
			}

			return nil
		},
	}
}

type cpuFeature struct {
	name string
	ok   bool
}

// cpuFeatures lists the SIMD features relevant to integer kernels on this architecture.
func cpuFeatures() []cpuFeature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []cpuFeature{
			{"sse4.1", cpu.X86.HasSSE41},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []cpuFeature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
		}
	default:
		return nil
	}
}

func cacheLinePad() uintptr {
	return unsafe.Sizeof(cpu.CacheLinePad{})
}
