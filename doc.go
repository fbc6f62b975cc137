/*
Package jpeginfo reports the container identifier and frame geometry of a
JPEG file by scanning its marker stream. Pixel data isn't decoded; only
the APPn and SOF0..SOF2 segments are read.

The whole file is passed in as a byte slice. Every index into it is
bounds checked, so a truncated file fails with ErrTruncatedSegment rather
than reporting a wrong size.

Example: Print the identifier and dimensions of a file.

   package main

   import (
   	"fmt"
   	"os"

   	"github.com/garyhouston/jpeginfo"
   )

   func main() {
   	if len(os.Args) != 2 {
   		fmt.Printf("Usage: %s file\n", os.Args[0])
   		return
   	}
   	buf, err := os.ReadFile(os.Args[1])
   	if err != nil {
   		panic(err)
   	}
   	report, err := jpeginfo.Scan(buf)
   	if err != nil {
   		panic(err)
   	}
   	fmt.Printf("%s %dx%d\n", report.Identifier, report.Frame.Width, report.Frame.Height)
   }

Example: List the markers and segment lengths.

   entries, err := jpeginfo.Segments(buf)
   if err != nil {
   	panic(err)
   }
   for _, e := range entries {
   	fmt.Printf("%s, %d bytes\n", e.Marker.Code.Name(), e.Length)
   }

When a file has more than one frame header, Scan orders them by marker
code and reports the last. ScanWithOptions with FirstSeen reports the
first one in the stream instead.
*/
package jpeginfo
