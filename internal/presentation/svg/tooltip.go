package svg

import "fmt"

// Tooltip is the singleton hover surface of one chart type. Each chart
// owns exactly one, identified by a fixed logical name, created lazily
// by the host page and reused across renders.
type Tooltip struct {
	ID string
}

// TooltipFor returns the tooltip for a chart's logical name.
func TooltipFor(chart string) Tooltip {
	return Tooltip{ID: "tooltip-" + chart}
}

// Markup returns the hidden host element the tooltip script toggles.
func (t Tooltip) Markup() string {
	return fmt.Sprintf(`<div id="%s" class="chart-tooltip" hidden></div>`, t.ID)
}

// tooltipOffsetPx keeps the tooltip clear of the pointer.
const tooltipOffsetPx = 12

// TooltipScript positions a chart's tooltip near the pointer and
// toggles its visibility. Emitted once per page by the host; the
// renderers only declare bindings, they never touch the DOM.
func TooltipScript() string {
	return fmt.Sprintf(`(function () {
  document.querySelectorAll("[data-tooltip-target]").forEach(function (el) {
    var tip = document.getElementById(el.getAttribute("data-tooltip-target"));
    if (!tip) return;
    el.addEventListener("pointerenter", function () {
      tip.innerHTML = el.getAttribute("data-tooltip-html");
      tip.hidden = false;
    });
    el.addEventListener("pointermove", function (ev) {
      tip.style.left = ev.pageX + %d + "px";
      tip.style.top = ev.pageY + %d + "px";
    });
    el.addEventListener("pointerleave", function () {
      tip.hidden = true;
    });
  });
})();`, tooltipOffsetPx, tooltipOffsetPx)
}
