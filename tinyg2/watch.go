package tinyg2

import (
	"context"

	"github.com/iwtcode/cncWidgets/models"
)

// Watch запускает фоновый процесс, который проецирует каждый полученный статус.
// Процесс завершается при отмене контекста или закрытии канала statuses;
// после этого выходной канал закрывается.
func (p *Projector) Watch(ctx context.Context, statuses <-chan models.ControllerStatus) <-chan models.StatusDisplay {
	displays := make(chan models.StatusDisplay)

	go func() {
		defer close(displays)
		p.logger.Debug("Status watch started")

		for {
			select {
			case <-ctx.Done():
				p.logger.Debug("Status watch stopped: context cancelled")
				return
			case status, ok := <-statuses:
				if !ok {
					p.logger.Debug("Status watch stopped: input closed")
					return
				}
				display := p.Project(status)
				select {
				case displays <- display:
				case <-ctx.Done():
					p.logger.Debug("Status watch stopped: context cancelled")
					return
				}
			}
		}
	}()

	return displays
}
