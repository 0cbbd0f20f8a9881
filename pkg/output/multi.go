package output

import "github.com/df07/go-sphere-raytracer/pkg/renderer"

type multiSink []renderer.RowSink

// MultiSink returns a sink that writes each row to every sink in order,
// stopping at the first error
func MultiSink(sinks ...renderer.RowSink) renderer.RowSink {
	return multiSink(sinks)
}

func (m multiSink) WriteRow(row renderer.Row) error {
	for _, sink := range m {
		if err := sink.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}
