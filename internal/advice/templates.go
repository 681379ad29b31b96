package advice

const greetingText = `Hello! I'm FinanceGuru, your personal finance assistant.

I can help you with budgeting, saving, paying down debt, investing, retirement planning, taxes, insurance and more.

What would you like to work on today?`

const debtText = `Here's a practical approach to managing debt:

1. List every debt with its balance, interest rate and minimum payment.
2. Always pay the minimum on everything so you avoid late fees and credit damage.
3. Pick a payoff strategy:
   - Avalanche: put extra money toward the highest interest rate first. This saves the most money.
   - Snowball: put extra money toward the smallest balance first. Quick wins keep you motivated.
4. Look into refinancing or consolidation if you can get a meaningfully lower rate.
5. Stop adding new balances to credit cards while you pay them down.

For student loans, check whether income-driven repayment or forgiveness programs apply to you. For mortgages, extra principal payments shorten the loan and cut total interest.`

const budgetText = `A simple budget starts with the 50/30/20 rule:

- 50% of take-home pay for needs (rent, groceries, utilities, insurance, minimum debt payments)
- 30% for wants (dining out, entertainment, hobbies)
- 20% for savings and extra debt payments

To get started:
1. Track every expense for one month.
2. Group spending into categories and compare against the targets above.
3. Cut the categories that surprise you most.
4. Automate savings on payday so it happens before you can spend it.

Review the budget monthly and adjust. A budget is a plan, not a punishment.`

const savingsText = `Some proven ways to build your savings:

1. Pay yourself first: set up an automatic transfer to savings on payday.
2. Keep savings in a high-yield savings account, separate from checking.
3. Start small. Even 5% of your income builds the habit, then increase it with every raise.
4. Give each savings goal a name, a target amount and a deadline.
5. Save windfalls such as tax refunds and bonuses instead of spending them.

Consistency matters more than the amount. Small automatic deposits add up faster than you'd expect.`

const emergencyFundText = `An emergency fund is your financial safety net:

- Aim for 3 to 6 months of essential expenses. Go closer to 6 months if your income is irregular or you support dependents.
- Start with a first milestone of $1,000 so small surprises don't land on a credit card.
- Keep it in a high-yield savings account: safe, liquid and earning some interest.
- Use it only for true emergencies like job loss, medical bills or urgent repairs.
- Refill it as soon as possible after you use it.`

const investingText = `Some fundamentals of investing:

1. Build an emergency fund and pay off high-interest debt before investing.
2. Take any employer retirement match. It is an instant return on your money.
3. Diversify. Low-cost index funds or ETFs spread risk across many companies.
4. Match your mix of stocks and bonds to your time horizon and risk tolerance.
5. Keep fees low. Expense ratios compound against you over time.
6. Invest regularly (dollar-cost averaging) and avoid trying to time the market.

Investing involves risk, including loss of principal. For a personalized plan, consider speaking with a licensed financial advisor.`

const retirementText = `Planning for retirement:

1. Start as early as you can. Compound growth rewards time more than anything else.
2. Contribute at least enough to your employer plan (401(k), 403(b)) to get the full match.
3. Consider an IRA or Roth IRA for additional tax-advantaged savings.
4. A common target is saving 15% of pre-tax income for retirement.
5. Shift gradually toward more conservative investments as retirement approaches.
6. Estimate your retirement expenses so you know what number you're aiming for.

Retirement rules and limits change, so check current contribution limits each year.`

const taxText = `A few ways to stay on top of taxes:

- Use tax-advantaged accounts such as 401(k), IRA and HSA to lower taxable income.
- Keep organized records of income, deductions and receipts throughout the year.
- Compare the standard deduction against itemizing to see which saves you more.
- Check eligibility for credits like the Earned Income or Child Tax Credit.
- If you're self-employed, set aside money for quarterly estimated payments.

Tax situations vary a lot. For anything complex, a qualified tax professional is worth the cost.`

const insuranceText = `Insurance protects your finances from large, unexpected losses:

- Health insurance: essential. Compare deductibles, premiums and out-of-pocket maximums.
- Auto and home or renters insurance: required or strongly advised. Review coverage limits yearly.
- Life insurance: important if anyone depends on your income. Term life is usually the most affordable.
- Disability insurance: protects your income if you can't work.

Shop around, bundle policies where it saves money, and avoid paying for coverage you don't need.`

const creditScoreText = `To build or improve your credit score:

1. Pay every bill on time. Payment history is the biggest factor.
2. Keep credit utilization below 30% of your limits, and lower is better.
3. Keep older accounts open to lengthen your credit history.
4. Apply for new credit only when you need it.
5. Check your credit reports for errors and dispute anything incorrect.

Improvements take time, but consistent habits show results within months.`

const homeBuyingText = `Thinking about buying a home? Some key steps:

1. Check your credit and work on improving it before applying for a mortgage.
2. Save for a down payment. 20% avoids private mortgage insurance, though many loans allow less.
3. Budget for closing costs (typically 2-5% of the price) plus ongoing maintenance.
4. Get pre-approved so you know what you can realistically afford.
5. Keep your total housing cost around 28% of gross monthly income.

Also compare renting versus buying for your situation. Buying isn't always the better financial choice.`

const cryptoText = `About cryptocurrency:

- Crypto is highly volatile and speculative. Prices can swing dramatically in short periods.
- Only invest money you can afford to lose entirely.
- Keep it to a small slice of a diversified portfolio.
- Use reputable exchanges, enable two-factor authentication and understand how custody works.
- Be wary of promises of guaranteed returns. They are a common sign of scams.

Tax rules apply to crypto gains, so keep records of every transaction.`

const stockMarketText = `Some guidance on the stock market:

- Individual stocks carry more risk than diversified funds. Most investors do well with broad index funds.
- Think long term. Short-term market swings are normal.
- Avoid making decisions based on headlines or fear of missing out.
- Understand what you own: read about a company's business and financials before buying its stock.
- Rebalance periodically to keep your allocation on target.

Past performance doesn't guarantee future results.`

const inflationText = `Protecting your money from inflation:

- Cash loses purchasing power over time, so keep only what you need for near-term spending and emergencies in cash.
- Long-term investments in diversified stocks have historically outpaced inflation.
- Consider inflation-protected securities (such as TIPS or I bonds) for part of your savings.
- Revisit your budget as prices rise and look for categories to trim.
- Negotiate raises and build skills so your income keeps pace.`

const incomeText = `Ways to grow your income:

1. Negotiate your salary. Research market rates before reviews or new offers.
2. Build in-demand skills or certifications in your field.
3. Start a side hustle based on skills you already have, such as freelancing, tutoring or consulting.
4. Look for passive income over time, such as dividend investing.

When extra income arrives, direct it toward your goals (debt payoff, savings, investing) rather than lifestyle creep.`

const educationText = `Planning for education costs:

- 529 plans offer tax-advantaged growth for education expenses.
- Fill out the FAFSA every year to qualify for grants, work-study and federal loans.
- Apply for scholarships. Many go unclaimed.
- Compare total cost of attendance, not only tuition, and consider community college for the first years.
- Borrow federal loans before private ones. They offer more flexible repayment options.

Don't sacrifice your own retirement savings to pay for a child's education. Loans exist for college, not for retirement.`

const bankingText = `Choosing and using bank accounts well:

- Look for checking accounts with no monthly fees and a large free ATM network.
- Keep savings in a high-yield account, which online banks often offer.
- Set up low-balance alerts to avoid overdraft fees.
- Use automatic transfers to make saving effortless.
- Make sure deposits are insured (FDIC or NCUA in the US).`

const planningText = `Setting financial goals that stick:

1. Make goals specific: an amount, a purpose and a deadline.
2. Split them into short-term (under a year), medium-term (1-5 years) and long-term (5+ years).
3. Prioritize: emergency fund, high-interest debt, retirement match, then other goals.
4. Automate contributions toward each goal.
5. Review progress every few months and adjust as life changes.

A written plan makes you far more likely to follow through.`

const fallbackText = `I'd be happy to help with your finances! Could you share a bit more detail about your situation or question?

I can help with topics like:
- Budgeting and saving
- Paying off debt
- Emergency funds
- Investing and retirement
- Taxes and insurance
- Credit scores and home buying`
