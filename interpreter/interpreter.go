package interpreter

import (
	"log/slog"

	"github.com/AINative-Studio/ai-kit-a2ui/binding"
	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/metric"
	"github.com/AINative-Studio/ai-kit-a2ui/render"
)

// ActionSink receives every user-triggered action with its context. The
// context always includes componentId plus kind-specific fields.
type ActionSink func(action string, context map[string]any)

// Interpreter renders component trees. One interpreter serves one surface;
// its StateStore carries the uncontrolled control values across render
// passes.
type Interpreter struct {
	states  *StateStore
	logger  *slog.Logger
	metrics *metric.Registry
}

// New creates an interpreter. logger and metrics may be nil.
func New(logger *slog.Logger, metrics *metric.Registry) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{
		states:  NewStateStore(),
		logger:  logger,
		metrics: metrics,
	}
}

// States exposes the control state registry so the session can prune
// entries when node identity changes.
func (it *Interpreter) States() *StateStore {
	return it.states
}

// Render walks the root sibling sequence and returns one renderable per
// node. The same model and sink references are passed down every recursion;
// they are never forked or copied per subtree.
func (it *Interpreter) Render(nodes []component.Node, model map[string]any, sink ActionSink) []*render.Node {
	if sink == nil {
		sink = func(string, map[string]any) {}
	}

	out := make([]*render.Node, 0, len(nodes))
	for i := range nodes {
		out = append(out, it.renderNode(nodes[i], model, sink))
	}

	if it.metrics != nil {
		it.metrics.Metrics.RenderPasses.Inc()
		it.metrics.Metrics.RenderedNodes.Observe(float64(countNodes(out)))
	}
	return out
}

// renderNode dispatches one node over the closed kind set.
func (it *Interpreter) renderNode(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	switch node.Kind {
	case component.KindText:
		return it.renderText(node, model)
	case component.KindHeading:
		return it.renderHeading(node, model)
	case component.KindButton:
		return it.renderButton(node, model, sink)
	case component.KindContainer:
		return it.renderContainer(node, model, sink)
	case component.KindDivider:
		return render.New(render.PrimitiveDivider, node.ID)
	case component.KindTextField:
		return it.renderTextField(node, model, sink)
	case component.KindCheckbox:
		return it.renderCheckbox(node, model, sink)
	case component.KindSlider:
		return it.renderSlider(node, model, sink)
	case component.KindChoicePicker:
		return it.renderChoicePicker(node, model, sink)
	case component.KindList:
		return it.renderList(node, model, sink)
	case component.KindTabs:
		return it.renderTabs(node, model, sink)
	case component.KindTabTrigger, component.KindTabContent:
		// Structural kinds are only meaningful inside a tabs node; loose
		// ones degrade like unknown kinds so the payload stays diagnosable
		return it.renderFallback(node)
	default:
		return it.renderFallback(node)
	}
}

func (it *Interpreter) renderText(node component.Node, model map[string]any) *render.Node {
	value := binding.Resolve(model, node.Properties.Raw("value"))
	return render.New(render.PrimitiveText, node.ID).
		WithProp("text", component.String(value, ""))
}

func (it *Interpreter) renderHeading(node component.Node, model map[string]any) *render.Node {
	value := binding.Resolve(model, node.Properties.Raw("value"))
	level := component.Int(binding.Resolve(model, node.Properties.Raw("level")), 1)
	if level < 1 || level > 6 {
		level = 1
	}
	return render.New(render.PrimitiveHeading, node.ID).
		WithProp("text", component.String(value, "")).
		WithProp("level", level)
}

func (it *Interpreter) renderButton(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	label := binding.ResolveString(model, node.Properties.Raw("label"), "")
	action := component.String(node.Properties.Raw("action"), "click")

	return render.New(render.PrimitiveButton, node.ID).
		WithProp("label", label).
		On(render.EventClick, func(any) {
			sink(action, map[string]any{"componentId": node.ID})
		})
}

func (it *Interpreter) renderContainer(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	out := render.New(render.PrimitiveBox, node.ID)
	for i := range node.Children {
		out.Append(it.renderNode(node.Children[i], model, sink))
	}
	return out
}

func (it *Interpreter) renderFallback(node component.Node) *render.Node {
	if it.metrics != nil {
		it.metrics.Metrics.UnknownKinds.WithLabelValues(node.Kind.String()).Inc()
	}
	it.logger.Warn("rendering fallback for unrecognized component kind",
		"kind", node.Kind.String(),
		"component_id", node.ID)

	return render.New(render.PrimitiveFallback, node.ID).
		WithProp("kind", node.Kind.String())
}

func countNodes(nodes []*render.Node) int {
	total := 0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		total += 1 + countNodes(node.Children)
	}
	return total
}
