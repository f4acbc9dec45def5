package util

import "cpu-scheduler/internal/responses"

func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return
}
