package dumps

import (
	"io"

	"github.com/reusee/monkeyfront/monkey"
	"gopkg.in/yaml.v3"
)

func YAML(w io.Writer, node monkey.Node) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(Tree(node)); err != nil {
		return err
	}
	return encoder.Close()
}
